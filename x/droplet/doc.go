/*
Package droplet implements a bucket exchange of non fungible assets.

A pool (bucket) holds assets in custody and issues a fungible droplet token for
each asset deposited. Returning droplets to the pool releases an asset of the
holder's choice, minus a redeem fee that is split between a distributor and the
treasury.

A holder may instead swap assets. A deposit with the swap flag set mints no
droplets and marks the holder as eligible for a swap. The following redeem
with the swap flag set burns no droplets, charges the reduced swap fee and
clears the eligibility. A holder can have at most one pending swap per pool.

Fee, treasury, ban list and the number of droplets issued for each asset are
configured with gconf.
*/
package droplet
