// Package parser turns PostgreSQL dump text into normalized statements and
// recognises the statement shapes used to identify schema objects.
//
// Tokenization uses a github.com/alecthomas/participle/v2 lexer. Splitting
// happens on top-level semicolons only, so string literals, quoted identifiers
// and dollar-quoted function bodies are never cut:
//
//	stmts, err := parser.ParseFile("dumps/v1.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, stmt := range stmts {
//		norm, _ := parser.Normalize(stmt)
//		fmt.Println(norm)
//	}
//
// Statement shapes are small participle grammars that only look at the leading
// tokens of a statement and return a structured capture:
//
//	shape, ok := parser.MatchConstraint("ALTER TABLE ONLY public.posts ADD CONSTRAINT posts_user_id_fkey FOREIGN KEY (user_id) REFERENCES public.users(id)")
//	// ok == true
//	// shape.ObjectName() == "posts_user_id_fkey"
//	// shape.OwnerName() == "public.posts"
//
// Shape grammars match upper-case keywords, so statements should be passed
// through Normalize first.
package parser
