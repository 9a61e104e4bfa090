package lexer

import "testing"

func tokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", input, err)
	}
	return tokens
}

func TestNextToken_Operators(t *testing.T) {
	input := "++ -- += -= *= /= <= >= == != is < > + - * / = . ; ( ) { }"
	want := []TokenType{
		INCREMENT, DECREMENT, PLUS_EQUALS, MINUS_EQUALS, STAR_EQUALS, SLASH_EQUALS,
		LESS_EQUAL, GREATER_EQUAL, EQUALITY, NONEQUALITY, IDENTITY,
		LESS, GREATER, PLUS, MINUS, STAR, SLASH, EQUALS, PERIOD, SEMI,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, EOF,
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "for while if else class auto const final nonlocal"
	want := []TokenType{KWD_FOR, KWD_WHILE, KWD_IF, KWD_ELSE, KWD_CLASS, KWD_AUTO, KWD_CONST, KWD_FINAL, KWD_NONLOCAL, EOF}

	tokens := tokenize(t, input)
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestNextToken_DigitOnlyIdentifier(t *testing.T) {
	tokens := tokenize(t, "3;")
	if tokens[0].Type != IDENTIFIER || tokens[0].Lexeme != "3" {
		t.Errorf("got %v, want IDENTIFIER(\"3\")", tokens[0])
	}
}

func TestNextToken_LineComment(t *testing.T) {
	tokens := tokenize(t, "a; // trailing comment\nb;")
	kinds := []TokenType{IDENTIFIER, SEMI, IDENTIFIER, SEMI, EOF}
	if len(tokens) != len(kinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(kinds), tokens)
	}
}

func TestNextToken_BlockCommentAcrossNewlines(t *testing.T) {
	input := "a /* line one\nline two */ b;"
	tokens := tokenize(t, input)
	if tokens[0].Lexeme != "a" || tokens[1].Lexeme != "b" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
	if tokens[1].Pos.Line != 2 {
		t.Errorf("expected identifier 'b' on line 2, got line %d", tokens[1].Pos.Line)
	}
}

func TestNextToken_LineCounterAdvancesOnNewlines(t *testing.T) {
	tokens := tokenize(t, "a;\n\nb;")
	if tokens[0].Pos.Line != 1 {
		t.Errorf("expected line 1 for first token, got %d", tokens[0].Pos.Line)
	}
	if tokens[2].Pos.Line != 3 {
		t.Errorf("expected line 3 for second identifier, got %d", tokens[2].Pos.Line)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	_, err := Tokenize("a $ b;")
	if err == nil {
		t.Fatal("expected a SyntaxError for '$'")
	}
	var synErr *SyntaxError
	if !asSyntaxError(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if synErr.Snippet != "$" {
		t.Errorf("got snippet %q, want %q", synErr.Snippet, "$")
	}
}

func asSyntaxError(err error, target **SyntaxError) bool {
	if se, ok := err.(*SyntaxError); ok {
		*target = se
		return true
	}
	return false
}

func TestNextToken_ThreeDotOneFourIsThreeDecimalPoints(t *testing.T) {
	// Lexically this is just three IDENTIFIER/PERIOD/IDENTIFIER tokens;
	// the decimal-literal meaning is resolved by the parser/evaluator.
	tokens := tokenize(t, "three.14;")
	want := []TokenType{IDENTIFIER, PERIOD, IDENTIFIER, SEMI, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}
