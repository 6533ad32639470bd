// Package recommend turns criterion scores and their breakdowns into
// prioritized, actionable advice. Urgency follows the score band;
// the advice text is tailored to the specific sub-metrics that
// dragged the score down.
package recommend
