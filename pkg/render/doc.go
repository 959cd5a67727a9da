// Package render turns algorithm results into static diagram artifacts.
//
// It is the downstream collaborator of the algorithm engines: the engines
// return pure data and this package owns every drawing concern. Three diagram
// kinds are produced:
//
//   - Full graph with a highlighted edge subset ([GraphDOT]) for MST and
//     shortest-path results, laid out and rasterized by Graphviz.
//   - Huffman tree with per-edge '0'/'1' labels ([HuffmanTreeDOT]).
//   - Symbol-frequency bar chart ([FrequencyChartSVG]), written as SVG
//     directly and converted to PNG with rsvg-convert.
//
// DOT generation is pure string building and needs no Graphviz at test time;
// [SVG] and [PNG] invoke the embedded Graphviz engine.
package render
