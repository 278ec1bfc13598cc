package questionnaire

import "time"

// Preference classifier outcomes. The classifier has exactly two branches.
const (
	ClubPress = "Press"
	ClubJet   = "Jet"
)

// Answer keys the classifier inspects.
const (
	keyBestSubject    = "best-subject"
	keyPublicSpeaking = "public-speaking"
)

// Questionnaire is a record of the "questionnaires" collection. At most one
// exists per student.
type Questionnaire struct {
	StudentID     string            `json:"student_id"`
	Answers       map[string]string `json:"answers"`
	PreferredClub string            `json:"preferredClub"`
	Timestamp     time.Time         `json:"timestamp"` // UTC
}

// PreferredClub maps questionnaire answers to a suggested club: "Press" for
// English as best subject or a taste for public speaking, "Jet" otherwise.
func PreferredClub(answers map[string]string) string {
	if answers[keyBestSubject] == "English" || answers[keyPublicSpeaking] == "Yes" {
		return ClubPress
	}
	return ClubJet
}
