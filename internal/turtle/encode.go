package turtle

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/lindsim/internal/lsys"
)

// ErrInvalidStartSymbol is returned when the expanded string does not begin
// with a forward-moving symbol.
var ErrInvalidStartSymbol = errors.New("invalid start symbol")

// Command is one turtle step: rotate the heading by Angle, then move
// Distance along the new heading. The first command of a sequence always
// carries Angle = 0.
type Command struct {
	Distance float64
	Angle    float64
}

// Encode converts an expanded symbol string into turtle commands.
//
// Every command at generation n shares the same distance, scale^-n, computed
// once up front. The first symbol must be a forward symbol and yields the
// opening (d, 0) command. After that, only turn symbols emit commands;
// forward and unclassified symbols emit nothing. This relies on the grammar
// marking every segment boundary with a turn symbol, which holds for all
// catalogued systems but does not generalize to grammars with consecutive
// forward symbols between turns.
func Encode(symbols string, def lsys.Definition, n int) ([]Command, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: empty symbol string", ErrInvalidStartSymbol)
	}
	if def.Actions[runes[0]] != lsys.Move {
		return nil, fmt.Errorf("%w: %q is not a forward symbol", ErrInvalidStartSymbol, runes[0])
	}

	d := math.Pow(def.Scale, -float64(n))

	cmds := make([]Command, 0, len(runes))
	cmds = append(cmds, Command{Distance: d})
	for _, sym := range runes[1:] {
		switch def.Actions[sym] {
		case lsys.TurnLeft:
			cmds = append(cmds, Command{Distance: d, Angle: def.LeftAngle})
		case lsys.TurnRight:
			cmds = append(cmds, Command{Distance: d, Angle: def.RightAngle})
		}
	}
	return cmds, nil
}
