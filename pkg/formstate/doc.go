// Package formstate provides the host-owned form state and the pure
// transforms that update it.
//
// Components never mutate each other's state. Input handlers apply Change and
// Blur, a submit handler calls Submit, and selection dialogs hand back a single
// SelectionCommitted value that the owner applies with Commit.
package formstate
