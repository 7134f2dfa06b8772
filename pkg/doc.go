// Package pkg provides the libraries behind glyphfall, a generator for
// "falling glyph" grids: columns of colored math symbols that cascade like
// digital rain.
//
// # Overview
//
// The data flow through glyphfall:
//
//	Config (TOML, flags or HTTP request)
//	         ↓
//	    [pipeline] options, defaults, validation
//	         ↓
//	    [rain] Markov marking + backward coloring, one column at a time
//	         ↓
//	    [render/sink] LaTeX, JSON, SVG, PNG, PDF, ANSI or XLSX
//	         ↓
//	    [cache] rendered artifacts (file or Redis)
//
// # Quick Start
//
//	opts := pipeline.FromConfig(config.Default())
//	cfg, _ := opts.RainConfig()
//	g, _ := rain.Generate(ctx, 50, 38, cfg, 42, 0)
//	os.Stdout.Write(sink.RenderLaTeX(g))
//
// Or through the pipeline, which adds validation and caching:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, _ := runner.Execute(ctx, pipeline.DefaultOptions())
//	os.Stdout.Write(res.Artifacts[pipeline.FormatLaTeX])
//
// # Main Packages
//
// [rain] - The generator. A two-state chain marks each column's cells blank
// or glyph; a backward pass colors every glyph by its distance from the
// chain head. Columns run in parallel with column-local random sources, so
// output depends only on the seed.
//
// [render/sink] - Renderers for a generated grid. The LaTeX sink writes an
// xcolor array; SVG, ANSI and XLSX sinks map symbol names to display text.
//
// [render] - SVG to PDF/PNG conversion via rsvg-convert.
//
// [pipeline] - Generate → render with artifact caching, shared by the CLI
// and HTTP API.
//
// [config] - TOML configuration and the built-in defaults.
//
// [cache] - Artifact cache implementations (file, Redis, null) and keys.
//
// [errors] - Structured errors with codes the HTTP layer maps to statuses.
//
// [observability] - Hooks for generate, render, cache and HTTP events.
//
// [rain]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/rain
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/render/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/glyphfall/pkg/observability
package pkg
