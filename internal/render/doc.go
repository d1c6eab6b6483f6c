// Package render turns a word pair and a visual theme into a pair of
// drawable card images, front and back. Rendering is a pure function of
// (pair, theme): base imagery is copied before text is drawn, so returned
// artifacts never alias the theme masters or each other. A memo cache keyed
// on (front, back, theme spec) makes repeat renders cheap; it is a
// correctness-neutral optimization and can be switched off.
package render
