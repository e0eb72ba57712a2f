// Package types defines the shared value types of the drilling
// calculation core: the JobSpec input, the category enums, the derived
// outputs (risk assessment, cutting parameters, peck plan, result
// aggregate), and the sentinel errors. All types are plain immutable
// values with no behavior beyond validation and small accessors.
package types
