// Package atomenc compiles a framework into the standpoint-atom encoding:
// a flat, rule-indexed logic program in which every atom is suffixed with
// the standpoint it is read under.
//
// Output, in order:
//
//	assumption(a2;a4).                     % unindexed, once
//
//	contrary(a2,not_a2).                   % unindexed, one per assumption
//
//	% not_a2_s1 <- a3_s1, a4_s1            % one numbered record per rule
//	head(2,not_a2_s1).
//	body(2,a3_s1).
//	body(2,a4_s1).
//
//	%
//	%%% Standpoint Inheritance Rules
//	%
//	% a1_s1 <- a1_all                      % one record per (edge, atom)
//	head(9,a1_s1).
//	body(9,a1_all).
//
// Record numbers start at 1 and are shared by rule and inheritance records.
// Inheritance expands the direct order edges only, unless WithClosedOrder is
// given, in which case the transitive closure from package hierarchy is used.
package atomenc
