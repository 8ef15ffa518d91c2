package service

import "fmt"

// ValidationError rejects a submission before any store is touched:
// missing file, missing nama or missing nrp.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateCheckError means the duplicate pre-check query itself failed,
// so plagiarism checking never happened for this attempt.
type DuplicateCheckError struct {
	Err error
}

func (e *DuplicateCheckError) Error() string {
	return fmt.Sprintf("duplicate check failed: %v", e.Err)
}

func (e *DuplicateCheckError) Unwrap() error {
	return e.Err
}

// StoreWriteError means the object-store write failed; no metadata row
// was attempted.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("object store write failed: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// MetadataWriteError means the metadata insert failed after the object
// was already written: the stored object is orphaned until an identical
// retry overwrites it.
type MetadataWriteError struct {
	Err error
}

func (e *MetadataWriteError) Error() string {
	return fmt.Sprintf("metadata write failed: %v", e.Err)
}

func (e *MetadataWriteError) Unwrap() error {
	return e.Err
}
