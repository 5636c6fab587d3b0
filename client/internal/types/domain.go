package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// AnimalName is a single entry of the /animals/all listing. The server owns
// ordering; the client never sorts or deduplicates.
type AnimalName = string
