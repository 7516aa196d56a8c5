package domain

type NormalizedDataset struct {
	Rows              []*RecordCandidate
	Columns           []string
	OriginalCount     int
	DuplicatesRemoved int
}

type UploadResult struct {
	Message           string   `json:"message"`
	OriginalRows      int      `json:"original_rows"`
	DuplicatesRemoved int      `json:"duplicates_removed"`
	ProcessedRows     int      `json:"processed_rows"`
	Columns           []string `json:"columns"`
	RejectedRows      int      `json:"rejected_rows"`
	RejectedLines     []int    `json:"rejected_lines"`
	PersistedRows     int64    `json:"persisted_rows"`
	Generation        string   `json:"generation"`
}

type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type MonthlySeries struct {
	Sales    []SeriesPoint `json:"sales"`
	Quantity []SeriesPoint `json:"quantity"`
}
