package event

type EventType uint8

const (
	EventTypeSysCallData EventType = iota
	EventTypeExitData
)

type IEventStruct interface {
	String() string
	EventType() EventType
	GetUUID() string
}

type Phase uint8

const (
	PHASE_ENTRY Phase = iota
	PHASE_EXIT
)

func (this Phase) String() string {
	if this == PHASE_EXIT {
		return "exit"
	}
	return "entry"
}
