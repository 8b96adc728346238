package render

import (
	"sort"

	"github.com/ortemap/ortemap/internal/dataset"
)

// RegionCounts holds per-region record totals, remembering the order in
// which regions were first encountered. Rebuilt fully on each load.
type RegionCounts struct {
	counts map[string]int
	order  []string
}

// Aggregate counts records per region in a single pass.
func Aggregate(records []dataset.PlaceRecord) *RegionCounts {
	rc := &RegionCounts{counts: make(map[string]int)}

	for _, rec := range records {
		if _, seen := rc.counts[rec.Region]; !seen {
			rc.order = append(rc.order, rec.Region)
		}
		rc.counts[rec.Region]++
	}

	return rc
}

// Count returns the number of records in a region, 0 if unseen.
func (rc *RegionCounts) Count(region string) int {
	return rc.counts[region]
}

// Total returns the number of counted records.
func (rc *RegionCounts) Total() int {
	total := 0
	for _, n := range rc.counts {
		total += n
	}
	return total
}

// Regions returns the number of distinct regions.
func (rc *RegionCounts) Regions() int {
	return len(rc.order)
}

// LegendEntry is one row of the legend: a region, its color and count.
type LegendEntry struct {
	Region string `json:"region"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// Legend returns entries sorted by count descending, ties broken by
// first-seen order. An empty dataset yields an empty legend.
func (rc *RegionCounts) Legend(colors *ColorAssigner) []LegendEntry {
	entries := make([]LegendEntry, 0, len(rc.order))
	for _, region := range rc.order {
		entries = append(entries, LegendEntry{
			Region: region,
			Color:  colors.ColorFor(region),
			Count:  rc.counts[region],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// Summary is the stats panel payload. TopRegion is omitted when there are
// no records.
type Summary struct {
	TotalPlaces  int    `json:"total_places"`
	TotalRegions int    `json:"total_regions"`
	TopRegion    string `json:"top_region,omitempty"`
	TopCount     int    `json:"top_count,omitempty"`
}

// Summarize derives the stats panel values. The top region is the entry with
// the maximum count, ties broken by first-seen order.
func (rc *RegionCounts) Summarize() Summary {
	s := Summary{
		TotalPlaces:  rc.Total(),
		TotalRegions: rc.Regions(),
	}

	for _, region := range rc.order {
		if rc.counts[region] > s.TopCount {
			s.TopRegion = region
			s.TopCount = rc.counts[region]
		}
	}

	return s
}
