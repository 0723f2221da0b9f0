package reservation

type State int

const (
	Init State = iota
	SiteLoaded
	CalendarOpen
	MonthMatched
	DaySelected
	CourtBlockMatched
	TimeSlotMatched
	BookInitiated
	LoginPrompted
	Authenticated
	ParticipantSelected
	BookConfirmedPreCode
	CodeRequested
	CodeAwaited
	CodeSubmitted
	Confirmed
	Failed
)

var stateNames = [...]string{
	Init:                 "init",
	SiteLoaded:           "site_loaded",
	CalendarOpen:         "calendar_open",
	MonthMatched:         "month_matched",
	DaySelected:          "day_selected",
	CourtBlockMatched:    "court_block_matched",
	TimeSlotMatched:      "time_slot_matched",
	BookInitiated:        "book_initiated",
	LoginPrompted:        "login_prompted",
	Authenticated:        "authenticated",
	ParticipantSelected:  "participant_selected",
	BookConfirmedPreCode: "book_confirmed_pre_code",
	CodeRequested:        "code_requested",
	CodeAwaited:          "code_awaited",
	CodeSubmitted:        "code_submitted",
	Confirmed:            "confirmed",
	Failed:               "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
