// Package dump parses the NationStates daily regions dump.
package dump

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/spyglass/models"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/html/charset"
)

// ErrMalformedSnapshot is returned when a REGION element is missing a
// required field or carries a non-numeric count.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

type rawOfficer struct {
	Nation string `xml:"NATION"`
	Office string `xml:"OFFICE"`
}

// rawRegion uses pointers for the mandatory fields so absence can be told
// apart from an empty element.
type rawRegion struct {
	Name          *string      `xml:"NAME"`
	NumNations    *string      `xml:"NUMNATIONS"`
	DelegateVotes *string      `xml:"DELEGATEVOTES"`
	DelegateAuth  *string      `xml:"DELEGATEAUTH"`
	LastUpdate    *string      `xml:"LASTUPDATE"`
	Factbook      string       `xml:"FACTBOOK"`
	Embassies     []string     `xml:"EMBASSIES>EMBASSY"`
	Officers      []rawOfficer `xml:"OFFICERS>OFFICER"`
}

// Decompress wraps a gzipped dump stream.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	return zr, nil
}

// Parse reads every REGION element in document order.
// Regions are never reordered, deduplicated or filtered.
func Parse(r io.Reader) ([]models.Region, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var regions []models.Region
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "REGION" {
			continue
		}

		var raw rawRegion
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("%w: region %d: %v", ErrMalformedSnapshot, len(regions)+1, err)
		}
		region, err := convert(raw)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", len(regions)+1, err)
		}
		regions = append(regions, region)
	}

	return regions, nil
}

func convert(raw rawRegion) (models.Region, error) {
	if raw.Name == nil {
		return models.Region{}, fmt.Errorf("%w: missing NAME", ErrMalformedSnapshot)
	}
	name := *raw.Name

	numNations, err := requireInt(name, "NUMNATIONS", raw.NumNations)
	if err != nil {
		return models.Region{}, err
	}
	votes, err := requireInt(name, "DELEGATEVOTES", raw.DelegateVotes)
	if err != nil {
		return models.Region{}, err
	}
	lastUpdate, err := requireInt(name, "LASTUPDATE", raw.LastUpdate)
	if err != nil {
		return models.Region{}, err
	}
	if raw.DelegateAuth == nil {
		return models.Region{}, fmt.Errorf("%w: %s: missing DELEGATEAUTH", ErrMalformedSnapshot, name)
	}

	region := models.Region{
		Name:          name,
		NumNations:    numNations,
		DelegateVotes: votes,
		DelegateAuth:  strings.TrimSpace(*raw.DelegateAuth),
		LastUpdate:    lastUpdate,
		Factbook:      raw.Factbook,
		Embassies:     raw.Embassies,
	}
	for _, o := range raw.Officers {
		region.Officers = append(region.Officers, models.Officer{Nation: o.Nation, Office: o.Office})
	}
	return region, nil
}

func requireInt(region, field string, value *string) (int64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %s: missing %s", ErrMalformedSnapshot, region, field)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s=%q is not an integer", ErrMalformedSnapshot, region, field, *value)
	}
	if n < 0 && field != "LASTUPDATE" {
		return 0, fmt.Errorf("%w: %s: %s=%d is negative", ErrMalformedSnapshot, region, field, n)
	}
	return n, nil
}
