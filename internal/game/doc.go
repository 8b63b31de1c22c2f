// Package game implements a hangman round.
//
// Round is the state machine: a secret word, its mask, and the mistake
// count. It is a value type and every guess returns a new Round:
//
//	r := game.NewRound("cat")
//	r, v := r.Guess("a") // v == game.Hit, r.Mask() == "*a*"
//	r, v = r.Guess("z")  // v == game.Miss, r.Mistakes() == 1
//
// A round is Lost when it reaches MaxMistakes and Won when no placeholder
// is left in the mask.
//
// Engine drives a Round over a line console. It draws the stage, asks for
// a guess and applies it, and repeats until the round is done:
//
//	e := game.NewEngine(console, renderer, quartz.NewReal(), logger)
//	result, err := e.PlayRound(word)
//	fmt.Println(result.Message())
package game
