// Package props holds the two value types dynamic property providers work
// with: the ordered Bag a single provider returns, and the merged Set the
// framework folds all bags into.
//
// It mirrors Spring Boot's TestPropertyValues as closely as Go allows:
//
//	// Spring: TestPropertyValues.of("first=001").and("second=002")
//	props.Of("first=001").And("second=002")
//
// A Bag preserves declaration order and keeps duplicates; collisions are only
// resolved when bags are folded into a Set, where the last write wins — both
// across bags and within a single bag.
package props
