// Package outline builds the in-page navigation of rendered HTML articles.
//
// An article is expected to nest its content in section elements, each
// opening with a header that holds an h1-h6 heading:
//
//	<article class="main-article">
//	  <h1>Guide</h1>
//	  <div class="content">
//	    <section id="setup">
//	      <header><h2>Setup</h2></header>
//	      <section id="install"><header><h3>Install</h3></header></section>
//	    </section>
//	  </div>
//	</article>
//	<nav id="outline"><div id="outline-scrollable"></div></nav>
//
// The generator turns that structure into an outline tree and renders it as
// nested lists inside the outline container:
//
//	<nav id="outline">
//	  <a href="#" class="level-1"><span>Guide</span></a>
//	  <div id="outline-scrollable">
//	    <ul class="level-2">
//	      <li><a href="#setup"><span>Setup</span></a>
//	        <div class="outline-scrollable-track"></div>
//	        <ul class="level-3"><li><a href="#install"><span>Install</span></a></li></ul>
//	      </li>
//	    </ul>
//	  </div>
//	</nav>
//
// Headings deeper than h3 stay in the tree but never get a nested list.
//
// # Quick Start
//
//	gen, err := outline.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := gen.Process(ctx, outline.Input{HTML: page})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("page.html", res.HTML, 0644)
//
// # Sources
//
// Besides single documents, a Generator can:
//
//   - render Markdown into a sectioned page and outline it (RenderMarkdown)
//   - process files concurrently with atomic writes (ProcessBatch)
//   - walk a site build manifest and outline every article page (ProcessManifest)
//
// # Configuration
//
//	gen, err := outline.New(
//	    outline.WithSelectors(outline.Selectors{...}),
//	    outline.WithSanitizer(true),
//	    outline.WithLogger(logger),
//	)
//
// A Generator is immutable once created and safe for concurrent use.
package outline
