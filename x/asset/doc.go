/*
Package asset implements a registry of unique, non fungible assets.

Each asset belongs to a collection and is owned by a single address. Assets
are issued by the configured issuer and can be transferred by their owner.
Other extensions move assets on behalf of their owners using the Controller.
*/
package asset
