// Package text analyzes strings for symmetric structure.
//
// IsPalindrome answers whether a string reads the same forwards and backwards
// once case and punctuation are ignored. Normalization is ASCII-rule based:
// the input is lower-cased (Unicode-aware, so 'K' and the Kelvin sign both
// become 'k') and then every byte outside [a-z0-9] is dropped. Letters outside
// ASCII, such as 'é' or 'ß', are therefore stripped rather than compared.
//
// The input string is never modified; Normalize returns a new string.
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n) for the normalized copy
package text
