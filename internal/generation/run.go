package generation

import "git.home.luguber.info/inful/barrelgen/internal/foundation/errors"

// Run starts the session and always ends it. A failure is reported through
// OnError before EndGeneration.
func Run(s *Session, params StartParams) (string, error) {
	written, err := s.Start(params).ToTuple()
	if err != nil {
		s.OnError(Describe(err))
	}
	s.EndGeneration()
	return written, err
}

// Describe renders err for the narrative: the classified message, or the plain error text.
func Describe(err error) string {
	if classified, ok := errors.AsClassified(err); ok {
		return classified.Message()
	}
	return err.Error()
}
