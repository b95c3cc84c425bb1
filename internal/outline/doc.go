// Package outline builds an outline tree from a document's nested sections
// and renders it as navigation markup.
//
// The three stages run in order for each document:
//   - Build walks the direct section children of the content container
//   - Renderer.RenderTitle and Renderer.RenderList turn the tree into markup
//   - Insert splices the markup into the page's outline container
//
// Headings of any level are captured by Build; RenderList only nests lists
// for items above level 3.
package outline
