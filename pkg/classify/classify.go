// Package classify tags regions by founder and password membership.
package classify

import "github.com/dtnitsch/spyglass/models"

// Membership holds the two tag lists fetched from the API. Names not present
// are simply not members.
type Membership struct {
	ownerless map[string]struct{}
	unlocked  map[string]struct{}
}

// NewMembership builds lookup sets from the founderless and passwordless
// region name lists. Empty names are ignored.
func NewMembership(ownerless, unlocked []string) Membership {
	return Membership{
		ownerless: toSet(ownerless),
		unlocked:  toSet(unlocked),
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

func (m Membership) Ownerless(name string) bool {
	_, ok := m.ownerless[name]
	return ok
}

func (m Membership) Unlocked(name string) bool {
	_, ok := m.unlocked[name]
	return ok
}

// rule is one highlight step. Rules run in order and each matching rule
// overwrites the suffix and style set by the ones before it.
type rule struct {
	match  func(models.Tag) bool
	suffix string
	style  models.Style
}

// rules must stay in this order: ownerless+unlocked repaints exec+unlocked,
// and locked always has the last word.
var rules = []rule{
	{
		match:  func(t models.Tag) bool { return t.ExecUnlocked },
		suffix: "~",
		style:  models.StyleExecUnlocked,
	},
	{
		match:  func(t models.Tag) bool { return t.Ownerless && t.Unlocked },
		suffix: "~",
		style:  models.StyleOwnerlessUnlocked,
	},
	{
		match:  func(t models.Tag) bool { return !t.Unlocked },
		suffix: "*",
		style:  models.StyleLocked,
	},
}

// ClassifyRegion computes the membership flags and highlight for one region.
func ClassifyRegion(r models.Region, m Membership) models.Tag {
	tag := models.Tag{
		Unlocked:  m.Unlocked(r.Name),
		Ownerless: m.Ownerless(r.Name),
	}
	tag.ExecUnlocked = tag.Unlocked && r.Executive()

	for _, rl := range rules {
		if rl.match(tag) {
			tag.Suffix = rl.suffix
			tag.Style = rl.style
		}
	}
	return tag
}

// Classify tags every region, preserving order.
func Classify(regions []models.Region, m Membership) []models.Tag {
	tags := make([]models.Tag, len(regions))
	for i, r := range regions {
		tags[i] = ClassifyRegion(r, m)
	}
	return tags
}
