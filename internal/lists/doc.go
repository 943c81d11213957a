package lists

// Package lists implements the list mutation protocol: CRUD and
// membership operations, client-side guards for the default list and
// empty names, and the refetch-over-reconcile consistency model that
// keeps every open view of a list in sync after a write.
