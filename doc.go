// Package calc implements a floating-point calculator for infix arithmetic.
//
// Expressions are made of numbers, the binary operators + - * / ^, prefix
// signs, parentheses, and the functions sin, cos, tan, atan, ln, log2, log10,
// sinh, cosh, and tanh. Whitespace is ignored everywhere, so "2 3" is the
// number 23. "2^3^2" is "2^(3^2)", and a sign binds tighter than any binary
// operator, so "-2^2" is 4.
//
// Evaluation is a single left-to-right pass over the input with an operand
// stack and a stack of pending operators. No syntax tree is built. A function
// applies to everything up to the close of the group it appears in, unless
// its argument is parenthesized: "sin 2^2" is sin(4), while "sin(2)^2" is
// the square of sin(2).
//
package calc
