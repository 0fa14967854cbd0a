package persona

// Persona field templates rendered into the AI persona-generation prompt.
// They are kept as pre-rendered JSON so the prompt output is stable.

// MassMarketTemplate is the field template for mass-market customers.
const MassMarketTemplate = `{
  "basicInfo": {
    "name": "",
    "age": 0,
    "gender": "",
    "occupation": "",
    "jobTitle": "",
    "monthlyIncome": 0,
    "maritalStatus": "",
    "numberOfChildren": 0
  },
  "familyContext": {
    "familyStructure": "",
    "familyFinancialStatus": "",
    "financialResponsibilities": [],
    "dependents": []
  },
  "psychological": {
    "personalityType": "",
    "attitudeTowardInsurance": "",
    "financialLiteracy": "",
    "decisionMakingStyle": "",
    "communicationStyle": ""
  },
  "needs": {
    "financialGoals": [],
    "mainConcerns": [],
    "previousInsuranceExperience": "",
    "currentInsurance": []
  },
  "specialCircumstances": {
    "healthConditions": [],
    "recentLifeEvents": [],
    "upcomingPlans": []
  }
}`

// HNWTemplate is the field template for high-net-worth customers.
const HNWTemplate = `{
  "basicInfo": {
    "name": "",
    "age": 0,
    "gender": "",
    "occupation": "",
    "industry": "",
    "wealthSource": ""
  },
  "financialStatus": {
    "estimatedNetWorth": 0,
    "assetAllocation": {
      "realEstate": 0,
      "stocks": 0,
      "cash": 0,
      "business": 0,
      "other": 0
    },
    "annualIncome": 0,
    "liquidityLevel": ""
  },
  "familyAndLegacy": {
    "familyStructure": "",
    "inheritancePlan": "",
    "familyRelationships": "",
    "hasFamilyTrust": false,
    "heirs": []
  },
  "business": {
    "businessType": "",
    "businessScale": "",
    "roleInBusiness": "",
    "successionPlan": "",
    "partners": []
  },
  "psychological": {
    "serviceExpectation": "",
    "trustLevel": "",
    "decisionMakingStyle": "",
    "privacyConcern": "",
    "experienceWithFinancialInstitutions": ""
  },
  "hnwNeeds": {
    "assetProtection": false,
    "taxOptimization": false,
    "wealthTransfer": false,
    "estateTaxFunding": false,
    "inheritanceEqualization": false,
    "keyPersonInsurance": false,
    "buySellAgreement": false,
    "legacyPlanning": false
  },
  "specialCircumstances": {
    "sellingBusiness": false,
    "divorceAssetSplit": false,
    "generationTransition": false,
    "heirHealthIssues": false,
    "otherCircumstances": []
  }
}`
