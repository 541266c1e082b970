package models

import "time"

// Timestamp mirrors the {seconds, nanoseconds} pairs the historical
// Firestore export uses, so imported documents decode without migration.
type Timestamp struct {
	Seconds     int64 `bson:"seconds" json:"seconds"`
	Nanoseconds int32 `bson:"nanoseconds" json:"nanoseconds"`
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Seconds:     t.Unix(),
		Nanoseconds: int32(t.Nanosecond()),
	}
}

func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanoseconds))
}

func (ts Timestamp) IsZero() bool {
	return ts.Seconds == 0 && ts.Nanoseconds == 0
}
