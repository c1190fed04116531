package config

type WorkerKeyStruct struct {
	// InvalidateSectionsQueue receives section ids whose content changed;
	// the invalidation worker drains it and drops the affected pool caches.
	InvalidateSectionsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	InvalidateSectionsQueue: "invalidate_sections_queue",
}
