package entity

import "time"

// CollectionChanged is emitted by a store listener. Documents is the full
// current contents of the collection; Err is set when the listener failed.
type CollectionChanged struct {
	Collection Collection
	Documents  []Document
	Err        error
	At         time.Time
}
