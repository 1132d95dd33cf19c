// Package paste computes text insertions from register content.
//
// The engine turns one register entry plus paste-site context (cursor
// position, editor mode, paste side, options) into an ordered list of edit
// instructions for the host buffer layer: the exact text to insert, the
// insertion anchor, and the post-paste cursor displacement. It never
// touches the buffer itself.
//
// The branch structure follows the content shape: macro recordings become
// replay requests, block content in visual-block mode goes through the
// block routine, and plain text splits by register mode (character-wise,
// line-wise, block-wise) and by whether a visual selection is being
// replaced.
package paste
