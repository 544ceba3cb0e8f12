package entity

import "errors"

var ErrInvalidMark = errors.New("mark must not be empty")

// Player pairs a display name with the mark it plays. It never changes after creation.
type Player struct {
	name string
	mark Cell
}

func NewPlayer(name string, mark Cell) (*Player, error) {
	if mark.IsEmpty() {
		return nil, ErrInvalidMark
	}

	return &Player{
		name: name,
		mark: mark,
	}, nil
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Cell {
	return that.mark
}
