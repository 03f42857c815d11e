// Package goident translates short domain phrases into identifier-style
// English tokens using an AI oracle.
//
// Goident turns Chinese phrases such as test-step or component names into
// short English identifiers (file names, variable names, test-case names)
// with persistent caching, batch translation, and context-aware
// disambiguation.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/goident"
//	    "github.com/ZaguanLabs/goident/cache"
//	    "github.com/ZaguanLabs/goident/oracle"
//	)
//
//	func main() {
//	    // Create oracle
//	    o := oracle.NewOpenAIOracle(oracle.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create translator
//	    t := goident.NewTranslator(goident.KebabCase, o,
//	        goident.WithStore(cache.NewFileStore(".ai-translator-cache")),
//	        goident.WithContext("FCT test documentation for a kitchen appliance"),
//	    )
//
//	    // Translate phrases
//	    results := t.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})
//	    fmt.Println(results["電源板"]) // power-board
//	}
package goident
