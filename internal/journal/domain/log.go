package domain

import "time"

// Log is a single journal entry. Summary and Sentiment are set once, right
// after creation, and stay nil if enrichment could not produce them.
type Log struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Summary   *string   `json:"summary" gorm:"type:text"`
	Sentiment *string   `json:"sentiment" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at" gorm:"index;not null"`
}

// TableName specifies the table name for GORM
func (Log) TableName() string {
	return "logs"
}

// Chronological reverses newest-first logs in place so the oldest comes first
func Chronological(logs []*Log) []*Log {
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs
}

// Texts returns the entry texts in the same order as logs
func Texts(logs []*Log) []string {
	texts := make([]string, len(logs))
	for i, l := range logs {
		texts[i] = l.Text
	}
	return texts
}
