package domain

// SessionKind distinguishes study sessions from scored test sessions.
type SessionKind string

const (
	SessionKindStudy SessionKind = "study"
	SessionKindTest  SessionKind = "test"
)

func (k SessionKind) String() string { return string(k) }

func (k SessionKind) IsValid() bool {
	switch k {
	case SessionKindStudy, SessionKindTest:
		return true
	}
	return false
}

// TestKind identifies which test flow produced a result.
//
// TestKindRecognition exists in the stored-row contract for compatibility
// with older clients; no current flow produces it.
type TestKind string

const (
	TestKindListenWrite TestKind = "listen_write"
	TestKindReadSpeak   TestKind = "read_speak"
	TestKindRecognition TestKind = "recognition"
)

func (k TestKind) String() string { return string(k) }

func (k TestKind) IsValid() bool {
	switch k {
	case TestKindListenWrite, TestKindReadSpeak, TestKindRecognition:
		return true
	}
	return false
}

// LanguageCode is an ISO 639-1 style code used to bucket words into decks.
type LanguageCode = string

// SupportedLanguages lists the language codes the client UIs offer.
// The backend does not reject codes outside this list; the list feeds
// the capabilities endpoint.
var SupportedLanguages = []LanguageCode{"de", "ko", "ja", "es", "fr", "pt", "en"}
