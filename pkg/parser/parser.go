package parser

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// dumpLexer tokenizes PostgreSQL dump text. The final Other rule matches any
	// single character so tokenization of arbitrary input never fails.
	dumpLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'(?:[^']|'')*'`},
		{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")*"`},
		{Name: "DollarTag", Pattern: `\$(?:[A-Za-z_][A-Za-z0-9_]*)?\$`},
		{Name: "Number", Pattern: `\d+(?:\.\d*)?`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
		{Name: "Punct", Pattern: `::|[(),.;=+\-*/%<>\[\]!:|&^~@#?]`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Other", Pattern: `.`},
	})

	symbols = dumpLexer.Symbols()

	tokComment          = symbols["Comment"]
	tokMultilineComment = symbols["MultilineComment"]
	tokWhitespace       = symbols["Whitespace"]
	tokDollarTag        = symbols["DollarTag"]
	tokIdent            = symbols["Ident"]
	tokPunct            = symbols["Punct"]

	// keywords are upper-cased by Normalize. Words commonly used as column names
	// (name, type, key, time, ...) are absent, as are words that only occur
	// inside multi-word type names (character varying, with time zone).
	keywords = map[string]bool{}
)

func init() {
	for _, kw := range strings.Fields(`
		ADD ALTER ALL AND AS ASC BY CASCADE CHECK COLUMN CONCURRENTLY
		CONSTRAINT CREATE DEFAULT DEFERRABLE DEFERRED DELETE DESC DISTINCT DROP
		EXCLUDE EXISTS FOREIGN FROM FUNCTION GRANT GROUP IF IMMEDIATE IN INDEX
		INITIALLY INSERT IS LANGUAGE NOT NULL ON ONLY OR ORDER OWNER PRIMARY
		REFERENCES REPLACE RESTRICT RETURNS REVOKE SELECT SEQUENCE SET TABLE TO
		UNIQUE UPDATE USING VIEW WHERE`) {
		keywords[kw] = true
	}
}

// ErrRead matches any *ReadError via errors.Is.
var ErrRead = errors.New("failed to read dump")

// ReadError is returned when a dump cannot be read. It is distinct from parse
// failures so callers can report the two differently.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read dump: %v", e.Err)
	}

	return fmt.Sprintf("failed to read dump %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRead.
func (e *ReadError) Is(target error) bool { return target == ErrRead }

// Parse reads a dump from r and splits it into statements.
//
// Example:
//
//	f, _ := os.Open("schema.sql")
//	defer f.Close()
//
//	stmts, err := parser.Parse(f)
//	if err != nil {
//		log.Fatal(err)
//	}
func Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}

	return Split(string(data))
}

// ParseFile reads the dump at path and splits it into statements.
func ParseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	stmts, err := Split(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to split %s", path)
	}

	return stmts, nil
}

// ParseFS reads the dump at name in fsys and splits it into statements.
func ParseFS(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}

	stmts, err := Split(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to split %s", name)
	}

	return stmts, nil
}

// Split breaks dump text into statements on top-level semicolons. Comments are
// removed and whitespace runs collapse to a single space. Semicolons inside
// string literals, quoted identifiers and dollar-quoted bodies never split, and
// dollar-quoted bodies are kept verbatim. Empty statements are dropped.
//
// Example:
//
//	stmts, _ := parser.Split(`
//		-- users
//		CREATE TABLE public.users (
//		    id integer NOT NULL
//		);
//		SET search_path = '';
//	`)
//	// stmts[0] == "CREATE TABLE public.users ( id integer NOT NULL )"
//	// stmts[1] == "SET search_path = ''"
func Split(src string) ([]string, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	return render(tokens, true, false), nil
}

// Normalize strips comments, collapses whitespace, upper-cases DDL keywords and
// trims the statement. String literals, quoted identifiers and dollar-quoted
// bodies are left untouched. Normalize is idempotent.
func Normalize(stmt string) (string, error) {
	tokens, err := tokenize(stmt)
	if err != nil {
		return "", err
	}

	out := render(tokens, false, true)
	if len(out) == 0 {
		return "", nil
	}

	return out[0], nil
}

func tokenize(src string) ([]lexer.Token, error) {
	lex, err := dumpLexer.LexString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize SQL")
	}

	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize SQL")
	}

	return tokens, nil
}

// render rebuilds statement text from tokens. When split is true a top-level
// semicolon ends the current statement; otherwise everything is one statement.
func render(tokens []lexer.Token, split, upper bool) []string {
	var (
		stmts        []string
		buf          strings.Builder
		pendingSpace bool
		dollarTag    string
	)

	write := func(s string) {
		if pendingSpace && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		pendingSpace = false
		buf.WriteString(s)
	}

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			stmts = append(stmts, s)
		}
		buf.Reset()
		pendingSpace = false
	}

	for _, tok := range tokens {
		if tok.EOF() {
			break
		}

		if dollarTag != "" {
			buf.WriteString(tok.Value)
			if tok.Type == tokDollarTag && tok.Value == dollarTag {
				dollarTag = ""
			}
			continue
		}

		switch tok.Type {
		case tokComment, tokMultilineComment, tokWhitespace:
			pendingSpace = true
		case tokDollarTag:
			write(tok.Value)
			dollarTag = tok.Value
		case tokPunct:
			if split && tok.Value == ";" {
				flush()
				continue
			}
			write(tok.Value)
		case tokIdent:
			if upper && keywords[strings.ToUpper(tok.Value)] {
				write(strings.ToUpper(tok.Value))
				continue
			}
			write(tok.Value)
		default:
			write(tok.Value)
		}
	}

	flush()
	return stmts
}
