// Package variance splits the total variance of a dataset into the parts
// carried by each term of a fitted random-effects model.
//
// All variances are population variances (divide by N) over observed
// entries only. Components are reported raw and as a percentage of the
// total; when the total is below TotalEps every percentage is zero.
//
// With a complete dataset the four parts are orthogonal and the
// percentages of α, β, interaction and ε add up to 100.
package variance
