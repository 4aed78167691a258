package reference

import "finrec/internal/ingest"

// Depot reference extract column names. Unlike the movement feeds, the depot
// extract is produced by the ingestion stage with a fixed layout.
const (
	DepotIDColumn       = "depot_id"
	DepotNameColumn     = "depot_name"
	DepotCategoryColumn = "depot_category"
)

// DepotInfo carries the decoded attributes of a depot.
type DepotInfo struct {
	Name     string
	Category string
}

// DepotTable resolves depot ids to their reference attributes. Built once,
// read-only afterwards.
type DepotTable struct {
	depots map[string]DepotInfo
}

// NewDepotTable builds the decode table from depot reference rows. Later
// rows win on duplicate ids, matching accumulator merge order upstream.
func NewDepotTable(rows []ingest.Row) *DepotTable {
	depots := make(map[string]DepotInfo, len(rows))
	for _, row := range rows {
		id := row[DepotIDColumn]
		if id == "" {
			continue
		}
		depots[id] = DepotInfo{
			Name:     row[DepotNameColumn],
			Category: row[DepotCategoryColumn],
		}
	}
	return &DepotTable{depots: depots}
}

// Lookup returns the depot attributes for id. The second return is false on
// a miss; callers leave the enrichment fields empty in that case.
func (t *DepotTable) Lookup(id string) (DepotInfo, bool) {
	info, ok := t.depots[id]
	return info, ok
}

// Len returns the number of depots in the table.
func (t *DepotTable) Len() int {
	return len(t.depots)
}
