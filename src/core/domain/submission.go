package domain

// SubmissionState is the lifecycle of one new-joke form submission.
//
//	idle -> submitting -> rejected
//	                   -> redirecting
type SubmissionState string

const (
	SubmissionIdle        SubmissionState = "idle"
	SubmissionSubmitting  SubmissionState = "submitting"
	SubmissionRejected    SubmissionState = "rejected"
	SubmissionRedirecting SubmissionState = "redirecting"
)

// FormErrorMalformed is the form-level message for submissions whose fields
// are missing or are not text.
const FormErrorMalformed = "Form not submitted correctly."

// FormValue is one posted form field. Present is false when the field was
// absent or did not arrive as a text value.
type FormValue struct {
	Value   string
	Present bool
}

// Text builds a present form value.
func Text(v string) FormValue {
	return FormValue{Value: v, Present: true}
}

// RawSubmission is the untrusted payload of a new-joke POST.
type RawSubmission struct {
	Name    FormValue
	Content FormValue
}

// Fields returns the text fields, or false when the submission is malformed.
func (r RawSubmission) Fields() (JokeFields, bool) {
	if !r.Name.Present || !r.Content.Present {
		return JokeFields{}, false
	}
	return JokeFields{Name: r.Name.Value, Content: r.Content.Value}, true
}

// Submission tracks one submission through its states. The zero value is idle.
type Submission struct {
	state       SubmissionState
	formError   string
	fieldErrors FieldErrors
	fields      JokeFields
	jokeID      string
}

// State returns the current state.
func (s *Submission) State() SubmissionState {
	if s.state == "" {
		return SubmissionIdle
	}
	return s.state
}

// Begin moves an idle submission to submitting.
func (s *Submission) Begin() {
	if s.State() == SubmissionIdle {
		s.state = SubmissionSubmitting
	}
}

// RejectForm ends the submission with a form-level error. Field detail is
// dropped since individual fields cannot be trusted.
func (s *Submission) RejectForm(message string) {
	s.state = SubmissionRejected
	s.formError = message
	s.fieldErrors = FieldErrors{}
	s.fields = JokeFields{}
}

// RejectFields ends the submission with field errors and echoes the fields back.
func (s *Submission) RejectFields(errs FieldErrors, fields JokeFields) {
	s.state = SubmissionRejected
	s.formError = ""
	s.fieldErrors = errs
	s.fields = fields
}

// Redirect ends the submission successfully with the created joke id.
func (s *Submission) Redirect(jokeID string) {
	s.state = SubmissionRedirecting
	s.jokeID = jokeID
}

func (s *Submission) FormError() string        { return s.formError }
func (s *Submission) FieldErrors() FieldErrors { return s.fieldErrors }
func (s *Submission) Fields() JokeFields       { return s.fields }
func (s *Submission) JokeID() string           { return s.jokeID }
