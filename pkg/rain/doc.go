// Package rain generates "falling glyph" grids: columns of symbols that
// cascade down a frame, each chain of glyphs fading from a dim head color
// to brighter tails.
//
// # Generation
//
// A column is built in two passes:
//
//  1. Marking: a two-state Markov chain ([Transition]) decides for every
//     position whether it holds a glyph or stays blank. The chain always
//     starts in the glyph state; the start state itself is never emitted.
//  2. Coloring: [Colorize] finds the first blank position and walks
//     backward toward index 0. Blank marks reset the running color to the
//     base color; glyph marks receive a random symbol and the running
//     color, after which the color is advanced by the configured
//     [Transform] (normally [Brighten]).
//
// Positions after the first blank are never visited by the default
// [ScanHead] walk and remain [CellUnset]. Renderers treat unset cells the
// same as empty ones. [ScanWrap] continues the walk past index 0 modulo the
// column length so every position is visited exactly once.
//
// # Grids
//
// [GenerateWith] builds a grid sequentially from a single [Source].
// [Generate] derives one source per column from a seed and builds columns
// concurrently; its output depends only on the seed, never on the number of
// workers. Grids are stored row-major; [Transpose] converts between row and
// column order.
//
// # Randomness
//
// A [Source] is any value with Float64 and IntN methods, which includes
// *math/rand/v2.Rand. Use [NewSource] for a seeded PCG source.
package rain
