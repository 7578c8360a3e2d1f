package model

type Inspection struct {
	RecordID              uint64  `gorm:"column:record_id;primaryKey;autoIncrement"`
	Date                  *string `gorm:"column:date;type:text"`
	Area                  string  `gorm:"column:area;type:text;not null"`
	Title                 string  `gorm:"column:title;type:text;not null"`
	Inspector             string  `gorm:"column:inspector;type:text;not null"`
	Description           string  `gorm:"column:description;type:text"`
	Severity              string  `gorm:"column:severity;type:text"`
	Category              string  `gorm:"column:category;type:text"`
	ImmediateActions      string  `gorm:"column:immediate_actions;type:text"`
	CorrectiveActionOwner string  `gorm:"column:corrective_action_owner;type:text"`
	Status                string  `gorm:"column:status;type:text;not null;default:'Open'"`
	ClosedAt              *string `gorm:"column:closed_at;type:text"`
	ClosedBy              *string `gorm:"column:closed_by;type:text"`
	ClosingNotes          *string `gorm:"column:closing_notes;type:text"`
	Effectiveness         *string `gorm:"column:effectiveness;type:text"`
	ReopenedAt            *string `gorm:"column:reopened_at;type:text"`
	ReopenedBy            *string `gorm:"column:reopened_by;type:text"`
	ReopeningReason       *string `gorm:"column:reopening_reason;type:text"`
}

func (Inspection) TableName() string {
	return "inspections"
}
