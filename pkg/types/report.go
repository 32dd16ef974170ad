package types

// DreamReport is the paid-tier structured interpretation. It is produced once
// by the interpretation provider and stored verbatim on the dream record.
type DreamReport struct {
	Interpretations []Interpretation `json:"interpretations"`
	Scripture       Scripture        `json:"scripture"`
	Prayer          string           `json:"prayer"`
}

type Interpretation struct {
	Title   string `json:"title"`
	Meaning string `json:"meaning"`
}

type Scripture struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Context   string `json:"context"`
}
