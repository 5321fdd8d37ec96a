/* Package uni implements the execution core of Uni, a small homoiconic
stack language in the FORTH tradition.

Programs and data share one representation: a list such as [dup *] typed
at the top level is simply pushed onto the stack, and the very same value
handed to exec runs as a program. Words are bound in a Dictionary, either
globally or in a local frame that lives only as long as the body that
opened it.

Evaluation never recurses on the Go stack. Every pending step is an
explicit Continuation on the interpreter's continuation stack, and the
evaluator is a loop that pops and runs one continuation at a time. A list
body drops its own continuation before running its last item, so a word
called in tail position reuses its caller's slot: tail recursion runs in
constant control space however deep it goes.

The same explicit state makes the evaluator resumable. Invoking an
AsyncBuiltin is the only point where evaluation may suspend: Resume then
returns Pending, and the host may run other interpreters, or anything else,
until the operation's Ready channel closes. No other step ever blocks.

Numbers form a tower of four exact tiers,

	Int32 < BigInt < Rational < Complex

where mixed operands promote upward, Int32 overflow promotes to BigInt
rather than wrapping, inexact integer division yields a Rational, and
results collapse back down to the lowest tier that holds them. Complex
numbers are only enabled on request, see WithComplex.

Errors abort the current evaluation, discarding its continuations and
local frames, but keep the stack and dictionary as they were, so that an
interactive host can report the failure and carry on.

*/
package uni
