package events

var MatchCompletedTopic = "MatchCompletedEvent"

type MatchCompleted struct {
	Role     string
	Location string
	Results  int
}

var SourceFailedTopic = "SourceFailedEvent"

type SourceFailed struct {
	Source string
	Err    string
}
