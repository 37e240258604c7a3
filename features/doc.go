// Package features encodes the Cartesian product of motors × gear ratios
// as a fixed-order feature matrix, and decodes solved selections back to
// their originating (Motor, ratio) identity.
//
// Layout — one row per physical attribute, one column per combination:
//
//	row 0  torque   τ_stall · ratio      (gearing scales torque up)
//	row 1  speed    ω_free  / ratio      (gearing scales speed down)
//	row 2  price    gearing-invariant
//	row 3  mass     gearing-invariant
//	row 4  speedFn  reserved placeholder (always 0)
//	row 5  ratio    the embedded gear ratio itself
//
// Column ordering is the product of the two input orderings, motor-major:
//
//	column(j) = (motors[j / len(ratios)], ratios[j % len(ratios)])
//
// and is never reordered during a run — index stability is what makes a
// solved binary selection decodable.
//
// Decoding matches price and mass exactly (they are gearing-invariant) and
// torque/speed within a caller-supplied tolerance, since the stored values
// were produced by multiplying/dividing by a ratio and carry rounding. A
// decode miss means the catalog and the matrix are out of sync — an
// invariant violation, not a recoverable runtime condition.
//
// The dense storage is gonum's mat.Dense; the matrix is immutable once
// built for a run.
package features
