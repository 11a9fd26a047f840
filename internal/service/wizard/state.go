package wizard

// State внешнее состояние мастера бронирования
type State string

const (
	StateSelectingType    State = "selecting_type"
	StateDetailsEntry     State = "details_entry"
	StateSubmitting       State = "submitting"
	StateConfirmed        State = "confirmed"
	StateSubmissionFailed State = "submission_failed"
)

// Step под-шаг custom бронирования внутри StateSelectingType
type Step int

const (
	StepDates Step = iota + 1
	StepAccommodation
	StepActivities
	StepServices
)

// String возвращает имя шага
func (s Step) String() string {
	switch s {
	case StepDates:
		return "dates"
	case StepAccommodation:
		return "accommodation"
	case StepActivities:
		return "activities"
	case StepServices:
		return "services"
	default:
		return "unknown"
	}
}

// isEditable возвращает true, если выбор можно менять
func (s State) isEditable() bool {
	return s == StateSelectingType || s == StateDetailsEntry || s == StateSubmissionFailed
}
