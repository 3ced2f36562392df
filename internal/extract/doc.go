// Package extract pulls the four weekly grosses series out of page text and
// assembles them into records.
//
// The page is flattened to visible text, then four label-anchored patterns
// (week ending, show count, gross, attendance) are matched independently in
// document order. Positions are paired by index across the four series and
// truncated to the shortest one; a position whose numeric tokens fail to
// parse is dropped on its own without affecting the rest of the batch.
package extract
