package model

// AnswerSlot names one of the report's free-text columns.
type AnswerSlot string

// Report answer slots, in question order.
const (
	SlotFeeling   AnswerSlot = "feeling"
	SlotYesterday AnswerSlot = "yesterday"
	SlotToday     AnswerSlot = "today"
	SlotBlockers  AnswerSlot = "blockers"
)

// Question pairs a prompt with the slot its answer is written to.
type Question struct {
	Text string
	Slot AnswerSlot
}

// Questions is the fixed standup sequence. The index into this slice is
// the state machine's current_question_index.
var Questions = []Question{
	{Text: "How are you feeling today?", Slot: SlotFeeling},
	{Text: "What did you work on yesterday?", Slot: SlotYesterday},
	{Text: "What will you work on today?", Slot: SlotToday},
	{Text: "Anything blocking you?", Slot: SlotBlockers},
}

// QuestionCount is the number of questions in a standup flow.
func QuestionCount() int {
	return len(Questions)
}

// QuestionAt returns the question for a state's index. The index is bounded
// by the state machine; out-of-range access is a programming error.
func QuestionAt(index int) Question {
	return Questions[index]
}
