// Package preflight provides readiness checks for the external tools and
// filesystem paths a conversion depends on.
//
// The assembly pipeline calls CheckDirectoryAccess after creating the output
// folder, and the CLI "config validate" command uses RunAll to print a
// summary of every check.
package preflight
