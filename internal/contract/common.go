package contract

type RecommendationReasonCode string

const (
	ReasonUrgency       RecommendationReasonCode = "URGENCY"
	ReasonWeekProximity RecommendationReasonCode = "WEEK_PROXIMITY"
	ReasonIncomplete    RecommendationReasonCode = "INCOMPLETE"
	ReasonOffTrack      RecommendationReasonCode = "OFF_TRACK"
)

type RecommendationReason struct {
	Code        RecommendationReasonCode
	Message     string
	WeightDelta *float64
}

type PlanErrorCode string

const (
	ErrInvalidDateRange PlanErrorCode = "INVALID_DATE_RANGE"
	ErrInvalidDate      PlanErrorCode = "INVALID_DATE"
	ErrUnknownTopic     PlanErrorCode = "UNKNOWN_TOPIC"
	ErrUnknownSubtopic  PlanErrorCode = "UNKNOWN_SUBTOPIC"
	ErrNoPlan           PlanErrorCode = "NO_PLAN"
	ErrInternalError    PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
