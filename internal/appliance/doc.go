// Package appliance provides the appliance record model and its in-memory store.
//
// An Appliance holds a name, a power rating in watts and the number of hours
// it runs per day. Values are normalized on the way in rather than rejected:
//
//   - an empty name becomes PlaceholderName ("Unknown Appliance")
//   - a power rating that is not strictly positive becomes 0
//   - daily hours outside 0-24 become 0
//
// The numeric setters return an out-of-range *Error describing the clamp so
// the caller can show it as a warning; the stored value is already safe.
//
//	a, _ := appliance.New("Refrigerator", 150, 24)
//	if err := a.SetPowerRating(-5); err != nil {
//	    fmt.Println(appliance.UserMessage(err)) // Warning: Power rating must be ...
//	}
//	fmt.Println(a.Display()) // Refrigerator                 0 W      24.0 hrs/day
//
// # Store and Search
//
// Store keeps records in registration order with no uniqueness constraint.
// MatchName and Filter implement the case-insensitive substring search and
// have no side effects, so they can be used independently of any console I/O.
//
// # Errors
//
// All input problems are reported as *Error values carrying an ErrorType.
// Use IsInvalidInput, IsOutOfRange, IsInvalidChoice and IsEmptyStore, or
// errors.Is with the Err* sentinels, to classify them.
package appliance
