package trie

import "fmt"

func Example() {
	t := New[rune]()
	for _, w := range []string{"cat", "car", "card", "care", "dog"} {
		t.Insert(Runes(w))
	}

	fmt.Println(t.Contains(Runes("car")), t.Contains(Runes("ca")), t.HasPrefix(Runes("ca")))

	values := Table[rune]{'c': 3, 'a': 1, 't': 1, 'r': 1, 'd': 2, 'e': 1, 'o': 1, 'g': 2}
	s := NewSearcher(Annotate(t, values))
	rack := NewRack(Runes("carde")...)

	for m := range s.Above(rack, NoScore) {
		fmt.Println(string(m.Word), m.Score)
	}
	best, _ := s.Best(rack)
	fmt.Println("best:", string(best.Word), best.Score)

	// Output:
	// true false true
	// car 5
	// card 7
	// care 6
	// best: card 7
}

func Example_improving() {
	t := New[rune]()
	for _, w := range []string{"cat", "car", "card", "care", "dog"} {
		t.Insert(Runes(w))
	}
	values := Table[rune]{'c': 3, 'a': 1, 't': 1, 'r': 1, 'd': 2, 'e': 1, 'o': 1, 'g': 2}
	s := NewSearcher(Annotate(t, values))

	for m := range s.Search(NewRack(Runes("carde")...), NoScore) {
		fmt.Println(string(m.Word), m.Score)
	}

	// Output:
	// car 5
	// card 7
}

func Example_quTiles() {
	tk := NewTokenizer("qu")
	t := New[string]()
	for _, w := range []string{"quit", "quiet", "suit"} {
		t.Insert(tk.Split(w))
	}
	values := Table[string]{"qu": 10, "i": 1, "t": 1, "e": 1, "s": 1, "u": 1}
	s := NewSearcher(Annotate(t, values))

	// One "qu" die face, laid out on a 2x2 board.
	board := NewBoard(2, []string{"qu", "i", "t", "e"})
	for m := range s.Above(board, NoScore) {
		fmt.Println(Join(m.Word), m.Score)
	}

	// Output:
	// quiet 13
	// quit 12
}
