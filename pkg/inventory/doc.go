// Package inventory converts cloud resource inventories into diagram
// documents.
//
// An [Inventory] is the raw description of deployed infrastructure as
// exported by provider APIs: regions holding VPCs, subnets, instances,
// gateways, route tables, and security groups, each record carrying the
// provider's own field names. [Build] turns an inventory into a
// [diagram.Document] with the containment forest, styling, relationship
// edges, and preliminary geometry the layout engine expects. Final geometry
// is the layout engine's job; the builder only seeds sizes generous enough
// for the solver to work within.
package inventory
