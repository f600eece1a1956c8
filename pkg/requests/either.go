package requests

// Either holds exactly one of two requesters and forwards every method to the
// active one. The zero value is not usable; build it with Left or Right.
type Either struct {
	left    Requester
	right   Requester
	isRight bool
}

var _ Requester = Either{}

func Left(r Requester) Either { return Either{left: r} }

func Right(r Requester) Either { return Either{right: r, isRight: true} }

func (e Either) IsLeft() bool { return !e.isRight }

// Inner returns the active requester.
func (e Either) Inner() Requester {
	if e.isRight {
		return e.right
	}
	return e.left
}
