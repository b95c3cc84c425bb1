// Package assets provides the page templates and stylesheets used when
// Markdown sources are rendered into outline-ready HTML pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in page template and outline style
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # injected into the page <head>
//	└── templates/
//	    └── {name}.html     # html/template page layout
//
// A page template must provide the containers the outline generator
// expects: an article with a top-level heading and a content div, and an
// outline element with a scrollable region.
//
// # Security
//
// Asset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
