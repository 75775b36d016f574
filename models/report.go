package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportType enum
type ReportType string

const (
	Pothole       ReportType = "pothole"
	SpeedBreaker  ReportType = "speed_breaker"
	StandingWater ReportType = "standing_water"
)

// FallbackImage is served for reports submitted without a photo
const FallbackImage = "fallback.png"

const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 1
)

var reportTypeNames = map[ReportType]string{
	Pothole:       "Pothole",
	SpeedBreaker:  "Unmarked Speed-breaker",
	StandingWater: "Standing Water",
}

// ReportTypes lists the accepted report types in display order.
func ReportTypes() []ReportType {
	return []ReportType{Pothole, SpeedBreaker, StandingWater}
}

func (t ReportType) Valid() bool {
	_, ok := reportTypeNames[t]
	return ok
}

// DisplayName returns the human readable label, or the raw value for unknown types.
func (t ReportType) DisplayName() string {
	if name, ok := reportTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// Priorities returns every selectable priority, lowest first.
func Priorities() []int {
	p := make([]int, 0, MaxPriority-MinPriority+1)
	for i := MinPriority; i <= MaxPriority; i++ {
		p = append(p, i)
	}
	return p
}

// Report represents a civic issue submitted by a citizen
type Report struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportType     ReportType         `bson:"report_type" json:"report_type"`
	Description    string             `bson:"report_description" json:"description"`
	Latitude       float64            `bson:"location_lat" json:"latitude"`
	Longitude      float64            `bson:"location_lon" json:"longitude"`
	CreatedAt      time.Time          `bson:"reported_at" json:"created_at"`
	IsResolved     bool               `bson:"is_resolved" json:"is_resolved"`
	ImageReference string             `bson:"image" json:"image_reference"`
	Priority       int                `bson:"priority" json:"priority"`
}

// GetPriority makes Report rankable.
func (r Report) GetPriority() int {
	return r.Priority
}

func (r Report) String() string {
	return fmt.Sprintf("%s at (%v, %v)", r.ReportType.DisplayName(), r.Latitude, r.Longitude)
}
