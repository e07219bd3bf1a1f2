package models

// StatusShipped is the only status value the backend ever writes. Orders
// are otherwise schemaless; the two mutable sub-fields (status, payment)
// are patched onto the document after creation and never read together.
const StatusShipped = "Shipped"
