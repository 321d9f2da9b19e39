package classify

import (
	"testing"

	"github.com/dtnitsch/spyglass/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRegion(t *testing.T) {
	m := NewMembership(
		[]string{"Ownerless Open", "Ownerless Exec", "Ownerless Locked"},
		[]string{"Open", "Exec Open", "Ownerless Open", "Ownerless Exec"},
	)

	tests := []struct {
		name   string
		region models.Region
		want   models.Tag
	}{
		{
			name:   "unlocked with non-executive delegate",
			region: models.Region{Name: "Open", DelegateAuth: "ABCE"},
			want:   models.Tag{Unlocked: true},
		},
		{
			name:   "unlocked with executive delegate",
			region: models.Region{Name: "Exec Open", DelegateAuth: "XABCE"},
			want:   models.Tag{Unlocked: true, ExecUnlocked: true, Suffix: "~", Style: models.StyleExecUnlocked},
		},
		{
			name:   "ownerless and unlocked",
			region: models.Region{Name: "Ownerless Open", DelegateAuth: "0"},
			want:   models.Tag{Unlocked: true, Ownerless: true, Suffix: "~", Style: models.StyleOwnerlessUnlocked},
		},
		{
			name:   "ownerless rule repaints executive rule",
			region: models.Region{Name: "Ownerless Exec", DelegateAuth: "X"},
			want:   models.Tag{Unlocked: true, Ownerless: true, ExecUnlocked: true, Suffix: "~", Style: models.StyleOwnerlessUnlocked},
		},
		{
			name:   "locked ownerless region",
			region: models.Region{Name: "Ownerless Locked", DelegateAuth: "X"},
			want:   models.Tag{Ownerless: true, Suffix: "*", Style: models.StyleLocked},
		},
		{
			name:   "absent from both lists",
			region: models.Region{Name: "Nowhere", DelegateAuth: "X"},
			want:   models.Tag{Suffix: "*", Style: models.StyleLocked},
		},
		{
			name:   "empty authority is not executive",
			region: models.Region{Name: "Open", DelegateAuth: ""},
			want:   models.Tag{Unlocked: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRegion(tt.region, m))
		})
	}
}

func TestClassify_LockedAlwaysWins(t *testing.T) {
	m := NewMembership([]string{"A", "B", "C"}, nil)
	regions := []models.Region{
		{Name: "A", DelegateAuth: "X"},
		{Name: "B"},
		{Name: "C", DelegateAuth: "XA"},
	}

	for i, tag := range Classify(regions, m) {
		assert.Equal(t, "*", tag.Suffix, regions[i].Name)
		assert.Equal(t, models.StyleLocked, tag.Style, regions[i].Name)
	}
}

func TestClassify_PreservesOrder(t *testing.T) {
	m := NewMembership(nil, []string{"B"})
	regions := []models.Region{{Name: "A"}, {Name: "B"}, {Name: "A"}}

	tags := Classify(regions, m)

	assert.Len(t, tags, 3)
	assert.Equal(t, "*", tags[0].Suffix)
	assert.Equal(t, "", tags[1].Suffix)
	assert.Equal(t, "*", tags[2].Suffix)
}

func TestNewMembership_IgnoresEmptyNames(t *testing.T) {
	m := NewMembership([]string{""}, []string{"", "A"})

	assert.False(t, m.Ownerless(""))
	assert.False(t, m.Unlocked(""))
	assert.True(t, m.Unlocked("A"))
	assert.False(t, m.Unlocked("a"))
}
