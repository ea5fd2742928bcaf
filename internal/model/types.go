package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

const (
	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"
)

// Animal is a colony member available as a cross parent. Genotype is kept in
// its canonical "A/a; P/p" form.
type Animal struct {
	VersionedRecord
	Name     string `json:"name"`
	Sex      string `json:"sex"`
	Genotype string `json:"genotype"`
	Notes    string `json:"notes,omitempty"`
}
