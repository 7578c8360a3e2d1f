package model

type Photo struct {
	EvidenceID uint64 `gorm:"column:evidence_id;primaryKey;autoIncrement"`
	RecordID   uint64 `gorm:"column:record_id;not null;index"`
	// payload stays nullable in the DDL so the additive migration can add it
	// to older photo tables.
	Payload  []byte `gorm:"column:payload;type:blob"`
	Filename string `gorm:"column:filename;type:text"`
	MimeType string `gorm:"column:mime_type;type:text"`
	Phase    string `gorm:"column:phase;type:text;not null;default:'opening'"`
}

func (Photo) TableName() string {
	return "photos"
}
