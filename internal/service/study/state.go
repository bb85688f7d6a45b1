package study

import (
	"github.com/hangyeol/codestudy-backend/internal/domain"
)

// featureState is one content request machine. All fields are guarded by
// the service mutex.
//
// Transitions:
//
//	idle    -> loading   first generate
//	loading -> ready     valid artifact lands
//	loading -> error     generation failed; artifact keeps its prior value
//	ready   -> loading   refresh; artifact kept until the replacement lands
//	error   -> loading   retry; the stale error flag is cleared
//
// The machine is never ready with a nil artifact.
type featureState struct {
	status   domain.RequestStatus
	artifact domain.Artifact

	// seq is the generation token. Every generate bumps it; a completing
	// request may only apply its result while it still holds the highest
	// token. Superseded responses are discarded, whichever order they
	// arrive in.
	seq uint64

	// answered is the option the client chose for the current quiz
	// artifact, nil until answered. Reset whenever a new artifact lands.
	answered *int
}

// View is the read-only projection handed to the rendering boundary.
type View struct {
	Status        domain.RequestStatus
	Artifact      domain.Artifact
	AnsweredIndex *int
}

func (fs *featureState) view() View {
	v := View{Status: fs.status, Artifact: fs.artifact}
	if fs.answered != nil {
		idx := *fs.answered
		v.AnsweredIndex = &idx
	}
	return v
}
